// Command csv2sfzc converts CSV sample-mapping tables into SFZ files.
//
// Usage:
//
//	csv2sfzc [root directory]
//
// Examples:
//
//	csv2sfzc ./instruments           # convert every *.csv under ./instruments
//	csv2sfzc -j 4 ./instruments      # convert with 4 concurrent workers
//	csv2sfzc --dry-run ./instruments # report what would be written
package main

func main() {
	Execute()
}
