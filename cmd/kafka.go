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
	"batchsender/kafka"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// kafkaCmd represents the kafka command
var kafkaCmd = &cobra.Command{
	Use:   "kafka <topic> <message-count>",
	Short: "Publish messages to a kafka topic",
	Long:  ``,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := parseMessageCount(args[1])
		if err != nil {
			return err
		}
		// Errors from here on are not usage errors.
		cmd.SilenceUsage = true

		kafkaConfig := kafka.Config{
			Topic:           args[0],
			BrokerAddresses: viper.GetStringSlice("brokers"),
		}

		config := GetConfig(count)
		return core.RunCLIInstance(&kafka.KafkaSenderBuilder{}, config, kafkaConfig)
	},
}

func init() {
	rootCmd.AddCommand(kafkaCmd)

	kafkaCmd.Flags().StringSlice("brokers", []string{}, "broker addresses")
	viper.BindPFlag("brokers", kafkaCmd.Flags().Lookup("brokers"))
}
