package main

import "github.com/yogeshrao/jaxb2-maven-plugin/cmd"

func main() {
	cmd.Execute()
}
