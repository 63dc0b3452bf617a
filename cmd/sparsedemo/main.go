// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/sparsemat/cmd/sparsedemo/cmd"

func main() {
	cmd.Execute()
}
