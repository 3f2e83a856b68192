/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ubuntu/decorate"
)

func newConvertCmd() *cobra.Command {
	var (
		output    string
		withGraph bool
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a scheduler export into the plan payload",
		Long:  "Convert a scheduler export into the plan columns, details and landscape served by the documentation backend.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := transformExport(args[0])
			if err != nil {
				return err
			}

			var payload any = result.Topology
			if withGraph {
				payload = result
			}
			data, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding payload: %w", err)
			}
			data = append(data, '\n')

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := writeFile(output, data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d columns and %d applications to %s\n",
				result.Counts.Columns, result.Counts.Applications, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the payload to this file instead of stdout")
	cmd.Flags().BoolVar(&withGraph, "graph", false, "Include the graph, counts and diagnostics")

	return cmd
}

func writeFile(path string, data []byte) (err error) {
	defer decorate.OnError(&err, "could not write %q", path)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return err
		}
	}
	return os.WriteFile(filepath.Clean(path), data, 0600)
}
