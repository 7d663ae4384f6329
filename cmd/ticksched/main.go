// cmd/ticksched/main.go
//
// Entry point; the cobra commands live next to it.

package main

func main() {
	Execute()
}
