// Package catalog exposes the language catalog model and the loader contracts
// used by the generator. A catalog is built once per run from a CSV source of
// language identity records and a script → language → trigram mapping; the
// two are kept as separate structures joined by language code. Loader
// implementations live under internal/catalog so CSV and JSON/YAML decoding
// details stay hidden from consumers.
package catalog
