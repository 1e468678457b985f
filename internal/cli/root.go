package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	operatorv1 "github.com/ogurasousui/operator-registry/internal/adapters/grpc/api/operator/v1"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DialFunc は addr の OperatorService に接続するクライアントを返します。
type DialFunc func(addr string) (operatorv1.OperatorServiceClient, io.Closer, error)

// DefaultDial は平文の gRPC 接続を作成します。
func DefaultDial(addr string) (operatorv1.OperatorServiceClient, io.Closer, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return operatorv1.NewOperatorServiceClient(conn), conn, nil
}

type globalOptions struct {
	addr    string
	user    string
	role    string
	timeout time.Duration
	dial    DialFunc
}

// NewRootCmd は operatorctl のルートコマンドを生成します。
func NewRootCmd(dial DialFunc) *cobra.Command {
	if dial == nil {
		dial = DefaultDial
	}
	opts := &globalOptions{dial: dial}

	rootCmd := &cobra.Command{
		Use:   "operatorctl",
		Short: "Manage the operator registry over gRPC",
		Long: `operatorctl talks to the operator registry service.

The acting user and role are sent as request metadata; only admin and
editor roles may change records.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.addr, "addr", "localhost:50051", "gRPC server address")
	rootCmd.PersistentFlags().StringVar(&opts.user, "user", "", "acting username")
	rootCmd.PersistentFlags().StringVar(&opts.role, "role", "", "acting role (admin, editor, viewer, ...)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(regionsCmd(opts))
	rootCmd.AddCommand(statusesCmd(opts))
	rootCmd.AddCommand(createCmd(opts))
	rootCmd.AddCommand(getCmd(opts))
	rootCmd.AddCommand(listCmd(opts))
	rootCmd.AddCommand(updateCmd(opts))
	rootCmd.AddCommand(advanceCmd(opts))
	rootCmd.AddCommand(removeCmd(opts))
	rootCmd.AddCommand(restoreCmd(opts))
	rootCmd.AddCommand(purgeTrashCmd(opts))

	return rootCmd
}

// withClient は接続とアクター付きのコンテキストを用意して fn を実行します。
func (o *globalOptions) withClient(cmd *cobra.Command, fn func(ctx context.Context, client operatorv1.OperatorServiceClient) error) error {
	client, closer, err := o.dial(o.addr)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()
	ctx = operatorv1.WithActor(ctx, o.user, o.role)

	return fn(ctx, client)
}
