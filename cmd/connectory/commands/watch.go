package commands

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"

	"github.com/saransh1220/flowart/internal/client/connectory"
	"github.com/saransh1220/flowart/internal/modules/directory/domain"
	"github.com/saransh1220/flowart/internal/modules/directory/infrastructure/fixtures"
)

const settleTimeout = 10 * time.Second

// watchCmd feeds stdin through the debounce controller. Each line is a
// new query; lines starting with ':' change a facet or the width.
func watchCmd(a *app) *cobra.Command {
	var (
		flags    filterFlags
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Search interactively, one query per line",
		Long: `Reads queries from stdin. Besides plain queries it accepts
  :medium <value>      :experience <value>      :width <pixels>      :quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fetcher connectory.Fetcher = a.client
			if flags.local {
				records := fixtures.Artists()
				fetcher = connectory.FetcherFunc(func(_ context.Context, f domain.Filter) ([]domain.Artist, error) {
					return domain.Apply(records, f), nil
				})
			}

			snapshots := make(chan connectory.Snapshot, 1)
			ctrl := connectory.NewController(fetcher,
				connectory.WithDebounce(debounce),
				connectory.WithNotifier(connectory.NotifierFunc(func(msg string) {
					fmt.Fprintln(cmd.ErrOrStderr(), msg)
				})),
				connectory.WithOnChange(func(s connectory.Snapshot) {
					// keep only the newest snapshot for the renderer
					select {
					case <-snapshots:
					default:
					}
					snapshots <- s
				}),
			)
			ctrl.SetFilter(flags.filter())

			masonry := connectory.NewMasonry(flags.width, nil)
			resized := make(chan int, 1)
			done := make(chan struct{})

			var wg conc.WaitGroup
			wg.Go(func() {
				var last connectory.Snapshot
				for {
					select {
					case s := <-snapshots:
						last = s
						if s.Status != connectory.StatusLoading {
							renderView(a.out, masonry, s.Status, s.Artists)
						}
					case w := <-resized:
						if masonry.Resize(w) && last.Status != connectory.StatusLoading {
							renderView(a.out, masonry, last.Status, last.Artists)
						}
					case <-done:
						select {
						case s := <-snapshots:
							if s.Status != connectory.StatusLoading {
								renderView(a.out, masonry, s.Status, s.Artists)
							}
						default:
						}
						return
					}
				}
			})

			quit := readLines(cmd, ctrl, resized)
			if !quit {
				waitSettled(ctrl, settleTimeout)
			}
			ctrl.Dispose()
			close(done)
			wg.Wait()
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", connectory.DefaultDebounce, "quiet period before a search is sent")
	return cmd
}

func readLines(cmd *cobra.Command, ctrl *connectory.Controller, resized chan<- int) (quit bool) {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ":") {
			ctrl.SetQuery(line)
			continue
		}
		verb, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
		arg = strings.TrimSpace(arg)
		switch verb {
		case "medium":
			ctrl.SetMedium(arg)
		case "experience":
			ctrl.SetExperience(arg)
		case "width":
			if w, err := strconv.Atoi(arg); err == nil {
				resized <- w
			}
		case "quit", "q":
			return true
		default:
			fmt.Fprintf(cmd.ErrOrStderr(), "unknown command %q\n", verb)
		}
	}
	return false
}

func waitSettled(ctrl *connectory.Controller, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if ctrl.Snapshot().Status != connectory.StatusLoading {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}
