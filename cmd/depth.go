/*
Copyright © 2020 Blaster Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"batchsender/sqs"
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// depthCmd represents the depth command
var depthCmd = &cobra.Command{
	Use:   "depth <queue-destination> <region>",
	Short: "Print the approximate number of messages in an AWS sqs queue",
	Long:  ``,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Errors from here on are not usage errors.
		cmd.SilenceUsage = true
		viper.BindPFlag("endpoint", cmd.Flags().Lookup("endpoint"))
		client, err := sqs.NewClient(&sqs.SQSConfiguration{
			Destination: args[0],
			Region:      args[1],
			Endpoint:    viper.GetString("endpoint"),
		})
		if err != nil {
			return err
		}

		ctx := context.Background()
		url, err := sqs.ResolveQueueUrl(ctx, client, args[0])
		if err != nil {
			return err
		}

		depth, err := sqs.QueueDepth(ctx, client, url)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Approximate number of messages: %d\n", depth)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(depthCmd)
	depthCmd.Flags().StringP("endpoint", "e", "", "custom sqs endpoint (e.g. localstack)")
}
