// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command validate-routes checks a destinations file the way the router
// loads it at startup.
//
// Usage:
//
//	validate-routes [routes.yml]
//
// It exits 0 when the file is valid and 1 when it is not.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-webhook-relay/internal/registry"
)

const defaultRoutesFile = "routes.yml"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

func run(args []string, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	routesFile := defaultRoutesFile
	if len(args) > 0 {
		routesFile = args[0]
	}

	fmt.Fprintf(stdout, "Validating routes file: %s\n", routesFile)

	routes, err := registry.Load(routesFile)
	if err != nil {
		fmt.Fprintf(stderr, "VALIDATION FAILED\n\nError: %v\n", err)
		return 1
	}

	list := routes.List()
	fmt.Fprintf(stdout, "VALIDATION PASSED\n\nLoaded %d destination(s):\n", len(list))

	for i, route := range list {
		fmt.Fprintf(stdout, "\n%d. %s\n", i+1, route.Name)
		fmt.Fprintf(stdout, "   URL:     %s\n", route.URL)
		fmt.Fprintf(stdout, "   Method:  %s\n", route.Method)
		fmt.Fprintf(stdout, "   Timeout: %s\n", route.Timeout)

		if route.AuthEnv == "" {
			continue
		}
		fmt.Fprintf(stdout, "   Auth:    $%s\n", route.AuthEnv)
		if token, ok := lookupEnv(route.AuthEnv); !ok || token == "" {
			fmt.Fprintf(stdout, "   warning: %s is not set or empty here; requests would be sent without Authorization\n", route.AuthEnv)
		}
	}

	return 0
}
