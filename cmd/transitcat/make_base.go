// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/transitcat/codec"
	"github.com/katalvlaran/transitcat/jsonutil"
	"github.com/katalvlaran/transitcat/session"
)

// runMakeBase ingests a base_requests document from r, builds the routing
// core, and writes the binary artifact to the path named by
// serialization_settings.file. No output is written to w on success;
// make_base communicates only through the artifact and its exit code.
func runMakeBase(r io.Reader, w io.Writer) error {
	in, err := jsonutil.Decode(r)
	if err != nil {
		return fmt.Errorf("make_base: %w", err)
	}

	log.Printf("make_base: ingesting %d base requests", len(in.BaseRequests))

	state, err := session.Build(in)
	if err != nil {
		return fmt.Errorf("make_base: %w", err)
	}

	log.Printf("make_base: built catalog (stops=%d buses=%d) and graph (edges=%d)",
		state.NumStops(), state.NumBuses(), state.NumEdges())

	if in.SerializationSettings.File == "" {
		return fmt.Errorf("make_base: serialization_settings.file is empty")
	}

	if err := writeArtifact(in.SerializationSettings.File, state); err != nil {
		return fmt.Errorf("make_base: %w", err)
	}

	log.Printf("make_base: wrote artifact to %s", in.SerializationSettings.File)
	return nil
}

// writeArtifact scopes the output file handle so it is closed on every
// exit path, including a failing codec.Write.
func writeArtifact(path string, state *session.State) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err = codec.Write(f, state); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
