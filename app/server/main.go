package main

import "blog-system/app/server/commands"

func main() {
	commands.Execute()
}
