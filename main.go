package main

import (
	"github.com/ColonelBlimp/sinewave/cmd"
	"github.com/ColonelBlimp/sinewave/internal/recovery"
)

func main() {
	defer recovery.HandlePanic()
	cmd.Execute()
}
