package assets

import (
	_ "embed"
)

// ZshHook contains the embedded zsh widget script.
//
//go:embed shell/zsh.sh
var ZshHook string

// BashHook contains the embedded bash widget script.
//
//go:embed shell/bash.sh
var BashHook string

// FishHook contains the embedded fish widget script.
//
//go:embed shell/fish.fish
var FishHook string
