// File: cmd/slicebench/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

func main() {
	execute()
}
