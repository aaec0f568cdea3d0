// SPDX-License-Identifier: Apache-2.0

package main

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	Execute()
}
