package cmd

import (
	"batchsender/core"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

func GetConfig(messageCount int) *core.Config {
	return &core.Config{
		MessageCount:      messageCount,
		GroupingKeyPolicy: viper.GetString("grouping-key"),
		EnableVerboseLog:  viper.GetBool("verbose"),
	}
}

func parseMessageCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid message count %q", s)
	}
	if n < 0 {
		return 0, errors.Errorf("message count must not be negative, got %d", n)
	}
	return n, nil
}
