package main

import "github.com/streambinder/lyricsync/cmd"

func main() {
	cmd.Execute()
}
