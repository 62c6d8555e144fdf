package main

import "github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/cli"

func main() {
	cli.Execute()
}
