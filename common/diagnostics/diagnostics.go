// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package diagnostics

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/0xsoniclabs/outcome/common/optional"
	"github.com/0xsoniclabs/outcome/common/result"
	"github.com/urfave/cli/v2"
)

// AddPerformanceDiagnosticsAction wraps an action function to add performance diagnostics
// such as CPU profiling, tracing, and a diagnostic server.
// The diagnosticsFlag must be an integer; if it names a valid port, a diagnostic server is
// started on it. The cpuProfileFlag and traceFlag name the files CPU profiles and traces
// are written to; blank names disable the respective diagnostic.
func AddPerformanceDiagnosticsAction(action cli.ActionFunc, diagnosticsFlag *cli.IntFlag, cpuProfileFlag, traceFlag *cli.StringFlag) cli.ActionFunc {
	return func(context *cli.Context) error {
		if port, present := diagnosticPort(context, diagnosticsFlag).Get(); present {
			startDiagnosticServer(port)
		}

		stopCpuProfiler, err := startIfRequested(fileName(context, cpuProfileFlag), startCpuProfiler)
		if err != nil {
			return err
		}
		defer stopCpuProfiler()

		stopTracer, err := startIfRequested(fileName(context, traceFlag), startTracer)
		if err != nil {
			return err
		}
		defer stopTracer()

		return action(context)
	}
}

func diagnosticPort(context *cli.Context, flag *cli.IntFlag) optional.Optional[int] {
	port := context.Int(flag.Names()[0])
	return optional.FromOk(port, port > 0 && port < (1<<16))
}

func fileName(context *cli.Context, flag *cli.StringFlag) optional.Optional[string] {
	name := context.String(flag.Names()[0])
	return optional.FromOk(name, strings.TrimSpace(name) != "")
}

// startIfRequested starts a diagnostic writing to the given file, if present,
// and returns the function stopping it.
func startIfRequested(file optional.Optional[string], start func(string) result.Result[func()]) (func(), error) {
	return optional.Map(file, start).
		OrElseGet(func() result.Result[func()] { return result.Ok(func() {}) }).
		Get()
}

func startDiagnosticServer(port int) {
	fmt.Printf("Starting diagnostic server at port http://localhost:%d\n", port)
	fmt.Printf("(see https://pkg.go.dev/net/http/pprof#hdr-Usage_examples for usage examples)\n")
	fmt.Printf("Block and mutex sampling rate is set to 100%% for diagnostics, which may impact overall performance\n")
	go func() {
		addr := fmt.Sprintf("localhost:%d", port)
		log.Println(http.ListenAndServe(addr, nil))
	}()
	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)
}

func startCpuProfiler(filename string) result.Result[func()] {
	f, err := os.Create(filename)
	if err != nil {
		return result.FailedWith[func()]("could not create CPU profile", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return result.FailedWith[func()]("could not start CPU profile", err)
	}
	return result.Ok(func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	})
}

func startTracer(filename string) result.Result[func()] {
	traceFile, err := os.Create(filename)
	if err != nil {
		return result.FailedWith[func()]("failed to create trace file", err)
	}
	if err := trace.Start(traceFile); err != nil {
		_ = traceFile.Close()
		return result.FailedWith[func()]("failed to start trace", err)
	}
	return result.Ok(func() {
		trace.Stop()
		_ = traceFile.Close()
	})
}
