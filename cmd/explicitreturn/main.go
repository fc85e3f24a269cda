// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command explicitreturn reports TypeScript functions without an explicit return type.
//
// Usage:
//
//	explicitreturn [flags] [path ...]
//
// Directories are searched for TypeScript sources matching the include patterns; files
// named on the command line are always checked. Settings are read from a YAML or TOML
// configuration file (by default .explicitreturn.yaml, .explicitreturn.yml or
// .explicitreturn.toml in the current directory), command line flags take precedence.
//
// The exit status is 0 when no issues were found, 1 when issues were found and 2 on errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)

	stop()
	os.Exit(exitCode(err, os.Stderr))
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0

	case errors.Is(err, ErrIssuesFound):
		return 1

	default:
		_, _ = fmt.Fprintf(stderr, "explicitreturn: %v\n", err)

		return 2
	}
}
