//go:build !windows

package main

import "syscall"

func init() {
	stopSignals = append(stopSignals, syscall.SIGTERM)
}
