// Command redistrict samples redistricting plans with a Metropolis-Hastings
// chain and writes the final plan of each chain as precinct<TAB>district.
//
// Usage:
//
//	redistrict -config redistrict.yaml
//	REDISTRICT_DISTRICTS=4 redistrict -out plan.txt
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "redistrict:", err)
		os.Exit(1)
	}
}
