package main

import "github.com/varsha/glucolog/cmd/glucolog"

func main() {
	glucolog.Execute()
}
