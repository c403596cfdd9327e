package main

import (
	"context"
	"os"
)

func main() {
	c := &cli{stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(c.execute(context.Background(), os.Args[1:]))
}
