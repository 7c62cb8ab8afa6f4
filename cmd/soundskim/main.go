// SPDX-License-Identifier: EPL-2.0

// Command soundskim scans sound files into frame indexes and reports
// on them: stream metadata, word boundaries, fingerprints.
package main

func main() {
	Execute()
}
