package logging_test

import (
	"fmt"

	"github.com/appchassis/logging"
)

func ExampleParseSeverity() {
	severity, err := logging.ParseSeverity("VERBOSE")
	fmt.Println(severity, err)

	_, err = logging.ParseSeverity("fatal")
	fmt.Println(err)
	// Output:
	// VERBOSE <nil>
	// unknown severity name: "fatal"
}

func ExampleSeverity_String() {
	for _, severity := range logging.AllSeverities() {
		fmt.Println(int32(severity), severity)
	}
	// Output:
	// 0 ERROR
	// 1 WARN
	// 2 INFO
	// 3 DEBUG
	// 4 VERBOSE
}

func ExampleService() {
	svc := logging.NewLogger()
	svc.Config = logging.Config{
		Level:          "debug",
		ProductName:    "stationd",
		ProductVersion: "1.4.2",
	}
	if err := svc.Initialize(); err != nil {
		panic(err)
	}
	defer svc.Shutdown(0)

	svc.Info("cache warmed")
	svc.InfoRemote("login accepted", "10.0.0.1", "alice")
	svc.Warnf("slow response: %dms", 412)
}
