package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - fcm:   Send a remote push to a device token through Firebase
// - local: Post a Pub/Sub push envelope straight to a running client

func main() {
	fcmCmd := flag.NewFlagSet("fcm", flag.ExitOnError)
	localCmd := flag.NewFlagSet("local", flag.ExitOnError)

	// fcm parameters
	fcmToken := fcmCmd.String("token", "", "Device token to send to (see GET /token)")
	fcmTitle := fcmCmd.String("title", "Hello", "Notification title")
	fcmBody := fcmCmd.String("body", "Sent from sendpush", "Notification body")
	fcmData := dataFlag{}
	fcmCmd.Var(&fcmData, "data", "Data entry as key=value, repeatable")

	// local parameters
	localEndpoint := localCmd.String("endpoint", "http://localhost:8080/push", "Push endpoint of the running client")
	localTitle := localCmd.String("title", "", "Notification title, omitted when empty")
	localBody := localCmd.String("body", "", "Notification body, omitted when empty")
	localRequestID := localCmd.String("request-id", "", "Request ID attribute attached to the envelope")
	localData := dataFlag{}
	localCmd.Var(&localData, "data", "Data entry as key=value, repeatable")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := sendFlags{
		FCM: fcmFlags{
			cmd:   fcmCmd,
			token: fcmToken,
			title: fcmTitle,
			body:  fcmBody,
			data:  fcmData,
		},
		Local: localFlags{
			cmd:       localCmd,
			endpoint:  localEndpoint,
			title:     localTitle,
			body:      localBody,
			requestID: localRequestID,
			data:      localData,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type sendFlags struct {
	FCM   fcmFlags
	Local localFlags
}

type fcmFlags struct {
	cmd   *flag.FlagSet
	token *string
	title *string
	body  *string
	data  dataFlag
}

type localFlags struct {
	cmd       *flag.FlagSet
	endpoint  *string
	title     *string
	body      *string
	requestID *string
	data      dataFlag
}

// dataFlag collects repeated key=value flags
type dataFlag map[string]string

func (d dataFlag) String() string {
	pairs := make([]string, 0, len(d))
	for k, v := range d {
		pairs = append(pairs, k+"="+v)
	}

	return strings.Join(pairs, ",")
}

func (d dataFlag) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return errors.Errorf("data entry %q is not key=value", value)
	}
	d[key] = val

	return nil
}

func runSubcommand(ctx context.Context, flags *sendFlags) error {
	switch os.Args[1] {
	case "fcm":
		return handleFCM(ctx, flags)
	case "local":
		return handleLocal(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleFCM(ctx context.Context, flags *sendFlags) error {
	if err := flags.FCM.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse fcm flags")
	}

	if *flags.FCM.token == "" {
		return errors.New("--token flag is required for fcm command")
	}

	return runFCM(ctx, *flags.FCM.token, *flags.FCM.title, *flags.FCM.body, flags.FCM.data)
}

func handleLocal(ctx context.Context, flags *sendFlags) error {
	if err := flags.Local.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse local flags")
	}

	return runLocal(ctx, *flags.Local.endpoint, *flags.Local.title, *flags.Local.body, *flags.Local.requestID, flags.Local.data)
}

func printUsage() {
	fmt.Println("Usage: sendpush <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  fcm      Send a remote push through Firebase Cloud Messaging")
	fmt.Println("  local    Post a push envelope to a running client")
	fmt.Println("")
	fmt.Println("Use 'sendpush <command> -h' for more information about a command.")
}

// Command implementations are in their respective files
