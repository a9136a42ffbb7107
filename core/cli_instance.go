package core

import (
	"context"
	"io"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
)

func RunCLIInstance(builder BatchSenderBuilder, config *Config, options interface{}) error {
	if config.EnableVerboseLog {
		log.SetLevel(log.DebugLevel)
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	chanSignal := make(chan os.Signal, 1)
	signal.Notify(chanSignal, os.Interrupt)
	defer signal.Stop(chanSignal)

	// An interrupt cancels the sender construction as
	// well as the remaining batches.
	go func() {
		select {
		case <-chanSignal:
			log.WithFields(log.Fields{"module": "cli_instance"}).Info("interrupted. cancelling the remaining batches")
			cancelFunc()
		case <-ctx.Done():
		}
	}()

	awaiter, err := StartInstance(ctx, builder, config, options, os.Stdout)
	if err != nil {
		return err
	}

	return awaiter.Err()
}

// StartInstance builds a sender with the provided builder and starts
// publishing config.MessageCount generated messages in a separate goroutine.
// The sender is closed when the run completes.
func StartInstance(ctx context.Context, builder BatchSenderBuilder, config *Config, options interface{}, out io.Writer) (*Awaiter, error) {
	policy, err := GetGroupingKeyPolicy(config.GroupingKeyPolicy)
	if err != nil {
		return nil, err
	}

	sender, err := builder.Build(ctx, config, options)
	if err != nil {
		return nil, err
	}

	awaiter, awaitNotifier := NewAwaiter()
	publisher := NewBatchPublisher(sender, policy, NewReporter(out))
	messages := GenerateMessages(config.MessageCount)

	go func() {
		summary, err := publisher.Publish(ctx, messages)
		if e := sender.Close(); e != nil {
			log.WithFields(log.Fields{"module": "cli_instance", "err": e}).Info("error closing sender")
		}
		awaitNotifier.Notify(summary, err)
	}()

	return awaiter, nil
}
