package main

import "github.com/vietddude/airdrop-checker/internal/cli"

func main() {
	cli.Execute()
}
