// Command trimsrc rewrites source trees with line-level filtering rules.
package main

import "github.com/mouse-blink/trimsrc/cmd"

func main() {
	cmd.Execute()
}
