package browser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/chromedp/chromedp"

	"github.com/finchley/verily/policy"
	"github.com/finchley/verily/poll"
	"github.com/finchley/verily/retry"
)

// Action names resolved against the executor's policy provider.
const (
	CheckBoxAction = "checkbox.confirm"
	SetFilesAction = "fileinput.confirm"
)

// CheckBox checks the checkbox matched by sel and confirms the control reads
// back as checked, retrying per the resolved policy. The click is only
// issued when the box is not already checked, so a re-invoked action never
// un-checks a box a prior attempt managed to check.
func CheckBox(ctx context.Context, exec *retry.Executor, sel string, opts ...policy.Option) error {
	if exec == nil {
		exec = retry.DefaultExecutor()
	}
	return exec.Confirm(ctx, CheckBoxAction,
		func(ctx context.Context) error {
			return chromedp.Run(ctx, chromedp.Evaluate(checkExpr(sel), nil))
		},
		func(ctx context.Context) (bool, error) {
			var checked bool
			if err := chromedp.Run(ctx, chromedp.Evaluate(isCheckedExpr(sel), &checked)); err != nil {
				return false, err
			}
			return checked, nil
		},
		opts...)
}

// SetFiles assigns paths to the file input matched by sel and confirms the
// input reads back exactly len(paths) attached files.
func SetFiles(ctx context.Context, exec *retry.Executor, sel string, paths []string, opts ...policy.Option) error {
	if exec == nil {
		exec = retry.DefaultExecutor()
	}
	want := len(paths)
	return exec.Confirm(ctx, SetFilesAction,
		func(ctx context.Context) error {
			return chromedp.Run(ctx, chromedp.SetUploadFiles(sel, paths, chromedp.ByQuery))
		},
		func(ctx context.Context) (bool, error) {
			var got int
			if err := chromedp.Run(ctx, chromedp.Evaluate(fileCountExpr(sel), &got)); err != nil {
				return false, err
			}
			return got == want, nil
		},
		opts...)
}

// AwaitText polls until the element matched by sel contains want. It is a
// pure wait: no action is re-invoked, making it suitable for asynchronously
// delivered content such as a flash message or an inbox entry.
func AwaitText(ctx context.Context, sel, want string, opts ...poll.Option) error {
	merged := append([]poll.Option{
		poll.WithMessage(fmt.Sprintf("text %q never appeared in %q", want, sel)),
	}, opts...)

	return poll.UntilTrue(ctx, func(ctx context.Context) (bool, error) {
		var got string
		if err := chromedp.Run(ctx, chromedp.Text(sel, &got, chromedp.ByQuery)); err != nil {
			return false, err
		}
		return strings.Contains(got, want), nil
	}, merged...)
}

// checkExpr clicks the matched checkbox when it is not already checked.
func checkExpr(sel string) string {
	q := strconv.Quote(sel)
	return `(() => {
	const el = document.querySelector(` + q + `);
	if (!el) { throw new Error("no element matches " + ` + q + `); }
	if (!el.checked) { el.click(); }
})()`
}

// isCheckedExpr reads back the checked state; a missing element reads as
// unchecked rather than an error, since the poll will simply come back.
func isCheckedExpr(sel string) string {
	q := strconv.Quote(sel)
	return `(() => {
	const el = document.querySelector(` + q + `);
	return !!(el && el.checked);
})()`
}

// fileCountExpr reads back the number of attached files, or -1 when the
// element is missing or not a file input.
func fileCountExpr(sel string) string {
	q := strconv.Quote(sel)
	return `(() => {
	const el = document.querySelector(` + q + `);
	return (el && el.files) ? el.files.length : -1;
})()`
}
