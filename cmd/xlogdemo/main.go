// Command xlogdemo exercises the xlog logger family from the command line.
//
//	go build -o xlogdemo ./cmd/xlogdemo
//	./xlogdemo run --dir ./logs
//	./xlogdemo stress --goroutines 64 --messages 1000
package main

import (
	"fmt"
	"os"

	"github.com/abyssdigger/xlog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
