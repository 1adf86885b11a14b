// Command watchlistctl is a terminal client for the filmlist API.
//
// Usage:
//
//	watchlistctl [flags] <command> [args]
//
// Commands:
//
//	search <query> [page]    search the catalog
//	images <tmdbId>          list posters and backdrops
//	list                     show the watchlist
//	add <tmdbId>             add a film
//	remove <tmdbId>          remove a film (edit mode)
//	toggle <tmdbId>          flip the watched flag (edit mode)
//	poster <tmdbId> [path]   set or clear the poster (edit mode)
//	unlock <password>        enter edit mode
//	lock                     leave edit mode
//	db-status                show database configuration
//	init-db                  apply the schema
//
// Edit mode is remembered in a state file between runs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/heartmarshall/filmlist-backend/pkg/watchclient"
)

const defaultAPI = "http://localhost:8080/api"

var errUsage = errors.New("usage")

func main() {
	fs := flag.NewFlagSet("watchlistctl", flag.ExitOnError)
	api := fs.String("api", envOr("FILMLIST_API", defaultAPI), "API base URL")
	state := fs.String("state", defaultStatePath(), "edit mode state file")
	verbose := fs.Bool("v", false, "log requests")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: watchlistctl [flags] <command> [args]")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	edit, err := watchclient.LoadEditMode(*state)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	c := &cli{
		client: watchclient.New(*api, watchclient.WithLogger(logger)),
		edit:   edit,
		log:    logger,
		out:    os.Stdout,
	}

	if err := c.run(ctx, fs.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fs.Usage()
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type cli struct {
	client *watchclient.Client
	edit   *watchclient.EditMode
	log    *slog.Logger
	out    io.Writer
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "search":
		return c.search(ctx, rest)
	case "images":
		return c.images(ctx, rest)
	case "list":
		return c.list(ctx)
	case "add", "remove", "toggle", "poster":
		return c.mutate(ctx, cmd, rest)
	case "unlock":
		if len(rest) != 1 {
			return errUsage
		}
		if err := c.edit.Unlock(ctx, c.client, rest[0]); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "Edit mode unlocked.")
		return nil
	case "lock":
		if err := c.edit.Lock(); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "Edit mode locked.")
		return nil
	case "db-status":
		return c.dbStatus(ctx)
	case "init-db":
		if err := c.client.InitDB(ctx); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "Database initialized successfully")
		return nil
	}
	return errUsage
}

func (c *cli) search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	page := 1
	query := strings.Join(args, " ")
	if n, err := strconv.Atoi(args[len(args)-1]); err == nil && len(args) > 1 {
		page = n
		query = strings.Join(args[:len(args)-1], " ")
	}

	res, err := c.client.Search(ctx, query, page)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tYEAR\tDIRECTOR\tIMDB")
	for _, it := range res.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", it.ID, it.Title, year(it.ReleaseDate), deref(it.Director), deref(it.IMDbID))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "page %d of %d (%d results)\n", res.Page, res.TotalPages, res.TotalResults)
	return nil
}

func (c *cli) images(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	imgs, err := c.client.Images(ctx, id)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tPATH\tSIZE\tLANG")
	for _, img := range imgs.Posters {
		fmt.Fprintf(tw, "poster\t%s\t%dx%d\t%s\n", img.FilePath, img.Width, img.Height, deref(img.Language))
	}
	for _, img := range imgs.Backdrops {
		fmt.Fprintf(tw, "backdrop\t%s\t%dx%d\t%s\n", img.FilePath, img.Width, img.Height, deref(img.Language))
	}
	return tw.Flush()
}

func (c *cli) list(ctx context.Context) error {
	films, err := c.client.List(ctx)
	if err != nil {
		return err
	}
	printFilms(c.out, films)
	return nil
}

func (c *cli) mutate(ctx context.Context, cmd string, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	id, err := parseID(args[:1])
	if err != nil {
		return err
	}

	sync := watchclient.NewSynchronizer(c.client, c.edit, c.log)
	if err := sync.Refresh(ctx); err != nil {
		return err
	}

	switch cmd {
	case "add":
		err = sync.Add(ctx, id)
	case "remove":
		err = sync.Remove(ctx, id)
	case "toggle":
		err = sync.ToggleWatched(ctx, id)
	case "poster":
		var path *string
		if len(args) > 1 {
			path = &args[1]
		}
		err = sync.SetPoster(ctx, id, path)
	}
	if errors.Is(err, watchclient.ErrEditLocked) {
		return fmt.Errorf("%w: run \"watchlistctl unlock <password>\" first", err)
	}
	if err != nil {
		return err
	}

	printFilms(c.out, sync.Snapshot().Films)
	return nil
}

func (c *cli) dbStatus(ctx context.Context) error {
	st, err := c.client.DBStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, st.Message)
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	for name, v := range st.Variables {
		fmt.Fprintf(tw, "%s\t%s\n", name, v)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, line := range st.Instructions {
		fmt.Fprintln(c.out, " -", line)
	}
	return nil
}

func printFilms(w io.Writer, films []watchclient.Film) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tYEAR\tWATCHED\tLETTERBOXD")
	for _, f := range films {
		mark := " "
		if f.Watched {
			mark = "x"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t[%s]\t%s\n", f.TMDBID, f.Title, year(deref(f.ReleaseDate)), mark, f.LetterboxdURL)
	}
	_ = tw.Flush()
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid tmdbId %q", args[0])
	}
	return id, nil
}

func year(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "filmlist", "edit.yaml")
}
