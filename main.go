package main

import "asset-ledger/cmd"

func main() {
	cmd.Execute()
}
