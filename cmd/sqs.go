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
	"batchsender/core"
	"batchsender/sqs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// sqsCmd represents the sqs command
var sqsCmd = &cobra.Command{
	Use:   "sqs <queue-destination> <message-count> <region>",
	Short: "Publish messages to an AWS sqs queue",
	Long: `Publish <message-count> generated messages to the queue identified by
<queue-destination> (a queue url or a queue name) in <region>.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := parseMessageCount(args[1])
		if err != nil {
			return err
		}
		// Errors from here on are not usage errors.
		cmd.SilenceUsage = true

		sqsConfig := sqs.SQSConfiguration{
			Destination: args[0],
			Region:      args[2],
			Endpoint:    viper.GetString("endpoint"),
		}

		config := GetConfig(count)
		return core.RunCLIInstance(&sqs.SQSSenderBuilder{}, config, sqsConfig)
	},
}

func init() {
	rootCmd.AddCommand(sqsCmd)

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	// sqsCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
	sqsCmd.Flags().StringP("endpoint", "e", "", "custom sqs endpoint (e.g. localstack)")
	viper.BindPFlag("endpoint", sqsCmd.Flags().Lookup("endpoint"))
}
