package main

import "github.com/controle-financeiro/gastos/internal/cli"

func main() {
	cli.Execute()
}
