package main

import (
	"context"
	"log"

	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/api"
)

func main() {
	if err := api.ServePredict(context.Background(), api.Options{}); err != nil {
		log.Fatal(err)
	}
}
