// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ostafen/sniff/internal/inspect"
	"github.com/spf13/cobra"
)

func DefineEncodingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encodings",
		Short: "List recognized byte order marks and magic numbers",
		Long: `The 'encodings' command displays the byte order marks and binary magic numbers
the inspector recognizes, together with the content type each one yields.
Extra magic signatures loaded via --magic-file are included in the listing.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         RunEncodings,
	}

	cmd.Flags().String("magic-file", "", "YAML file with extra magic signatures")
	return cmd
}

func RunEncodings(cmd *cobra.Command, args []string) error {
	registry := inspect.NewRegistry()

	magicFile, _ := cmd.Flags().GetString("magic-file")
	if magicFile != "" {
		if err := inspect.LoadMagicFile(registry, magicFile); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tPREFIX\tRESULT")

	for _, bom := range inspect.ByteOrderMarks() {
		fmt.Fprintf(w, "bom\t%s\t%s\n",
			hex.EncodeToString(bom.Prefix),
			bom.ContentType,
		)
	}

	for _, sig := range registry.Signatures() {
		fmt.Fprintf(w, "magic\t%s\t%s\n",
			hex.EncodeToString(sig),
			inspect.Binary,
		)
	}
	return w.Flush()
}
