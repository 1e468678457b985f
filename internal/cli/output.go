package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	operatorv1 "github.com/ogurasousui/operator-registry/internal/adapters/grpc/api/operator/v1"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

func statusLabel(id int32) string {
	switch id {
	case 1:
		return yellow("pending_create")
	case 2:
		return green("created")
	case 3:
		return yellow("pending_delete")
	case 4:
		return red("deleted")
	default:
		return fmt.Sprintf("unknown(%d)", id)
	}
}

func formatTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return ts.AsTime().Local().Format(time.DateTime)
}

func printOperator(out io.Writer, op *operatorv1.Operator) {
	if op == nil {
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%s\n", op.Id)
	fmt.Fprintf(w, "code\t%03d\n", op.Code)
	fmt.Fprintf(w, "region\t%d\n", op.RegionId)
	fmt.Fprintf(w, "name\t%s %s\n", op.FirstName, op.LastName)
	fmt.Fprintf(w, "national id\t%s\n", op.NationalId)
	fmt.Fprintf(w, "status\t%s\n", statusLabel(op.StatusId))
	fmt.Fprintf(w, "created\t%s by %s\n", formatTime(op.CreatedAt), op.CreatedBy)
	if op.ModifiedBy != "" {
		fmt.Fprintf(w, "modified\t%s by %s\n", formatTime(op.UpdatedAt), op.ModifiedBy)
	}
	if op.DeletedAt != nil {
		fmt.Fprintf(w, "trashed\t%s by %s\n", red(formatTime(op.DeletedAt)), op.DeletedBy)
	}
	_ = w.Flush()
}

func printOperatorTable(out io.Writer, ops []*operatorv1.Operator) {
	if len(ops) == 0 {
		fmt.Fprintln(out, faint("no operators"))
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tREGION\tNAME\tNATIONAL ID\tSTATUS\tID")
	for _, op := range ops {
		fmt.Fprintf(w, "%03d\t%d\t%s %s\t%s\t%s\t%s\n",
			op.Code, op.RegionId, op.FirstName, op.LastName, op.NationalId, statusLabel(op.StatusId), op.Id)
	}
	_ = w.Flush()
}

// describeError は gRPC エラーを ErrorInfo の reason 付きで表示用に整形します。
func describeError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return fmt.Errorf("%s [%s]: %s", red(st.Code().String()), info.GetReason(), st.Message())
		}
	}
	return fmt.Errorf("%s: %s", red(st.Code().String()), st.Message())
}
