package main

import (
	"fmt"

	"github.com/rickbarretto/dsa/result"
)

type Output = string

type ExitCode int

const (
	Success ExitCode = iota
	CommandNotFound
	PermissionDenied
	UnknownError
)

func (c ExitCode) String() string {
	switch c {
	case Success:
		return "Success"
	case CommandNotFound:
		return "Command Not Found"
	case PermissionDenied:
		return "Permission Denied"
	default:
		return "Unknown Error"
	}
}

func printSuccess(message string) {
	fmt.Printf("Success: %s\n", message)
}

func printFail(err string) {
	fmt.Printf("Failure: %s\n", err)
}

func main() {
	valid := result.Ok[string, string]("Operation succeeded")
	invalid := result.Fail[string, string]("Operation failed")
	notFound := result.Fail[Output, ExitCode](CommandNotFound)

	valid.Match(printSuccess, printFail)
	invalid.Match(printSuccess, printFail)

	fmt.Println(valid.Debug())
	fmt.Println(invalid.Debug())
	fmt.Println(notFound.Debug())

	fmt.Print(notFound.Dump())
}
