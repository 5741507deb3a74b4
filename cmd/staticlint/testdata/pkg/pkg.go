package main

import (
	"sync"
)

func main() {
	// for copylock: mutex copied by value
	var mu sync.Mutex
	muCopy := mu // want "assignment copies lock value to muCopy: sync.Mutex"
	muCopy.Lock()
}
