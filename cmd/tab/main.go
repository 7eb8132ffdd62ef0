package main

import "go.minekube.com/tab/pkg/cmd/tab"

func main() {
	tab.Execute()
}
