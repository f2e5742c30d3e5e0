package main

import "lovesync-backend/cmd"

func main() {
	cmd.Run()
}
