// Command grove is a CLI client for the Gratitude Grove service.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gratitude-grove/core/internal/client"
	"github.com/gratitude-grove/core/internal/pkg/datefilter"
)

func usage() {
	fmt.Fprintf(os.Stderr, `grove CLI
Usage:
  grove -addr URL <cmd> [args]

Commands:
  signup   -e <email> -p <password> -n <nickname>
  signin   -e <email> -p <password>              (saves session)
  signout
  whoami
  today
  write    <line> [line] [line]                  (today's entry, up to 3 lines)
  edit     -id <uuid> <line> [line] [line]
  rm       -id <uuid>
  list     [-year N] [-month N] [-day N] [-page N] [-size N]
  count
  feed     [-page N] [-size N]
  like     -id <uuid>
  graph                                          (contribution grid, last 6 months)
`)
	os.Exit(2)
}

func main() {
	addr := flag.String("addr", "http://localhost:2333/api/v1", "API base URL")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	sess, err := client.NewSession()
	if err != nil {
		fail(err)
	}
	sess.Restore()
	c := client.New(*addr, sess)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd {

	case "signup":
		fs := flag.NewFlagSet("signup", flag.ExitOnError)
		email := fs.String("e", "", "email")
		password := fs.String("p", "", "password")
		nickname := fs.String("n", "", "nickname")
		_ = fs.Parse(args)
		if *email == "" || *password == "" || *nickname == "" {
			fmt.Fprintln(os.Stderr, "need -e, -p and -n")
			os.Exit(1)
		}
		profile, err := c.SignUp(ctx, *email, *password, *nickname)
		if err != nil {
			fail(err)
		}
		fmt.Printf("환영합니다, %s님!\n", profile.Nickname)

	case "signin":
		fs := flag.NewFlagSet("signin", flag.ExitOnError)
		email := fs.String("e", "", "email")
		password := fs.String("p", "", "password")
		_ = fs.Parse(args)
		if *email == "" || *password == "" {
			fmt.Fprintln(os.Stderr, "need -e and -p")
			os.Exit(1)
		}
		profile, err := c.SignIn(ctx, *email, *password)
		if err != nil {
			fail(err)
		}
		fmt.Printf("안녕하세요, %s님!\n", profile.Nickname)

	case "signout":
		if err := c.SignOut(ctx); err != nil {
			fail(err)
		}
		fmt.Println("로그아웃되었습니다.")

	case "whoami":
		p := sess.Profile()
		if p == nil {
			fmt.Println("로그인되어 있지 않습니다.")
			return
		}
		printJSON(p)

	case "today":
		entry, err := c.TodayDiary(ctx)
		if err != nil {
			fail(err)
		}
		if entry == nil {
			fmt.Println("오늘의 감사일기가 아직 없습니다.")
			return
		}
		printEntry(entry.ID, entry.CreatedAt, entry.Content, entry.LikeCount)

	case "write":
		entry, err := c.CreateDiary(ctx, draftLines(args))
		if err != nil {
			fail(err)
		}
		if entry == nil {
			fmt.Println("저장할 내용이 없습니다.")
			return
		}
		printEntry(entry.ID, entry.CreatedAt, entry.Content, entry.LikeCount)

	case "edit":
		fs := flag.NewFlagSet("edit", flag.ExitOnError)
		id := fs.String("id", "", "diary id")
		_ = fs.Parse(args)
		if *id == "" || fs.NArg() == 0 {
			fmt.Fprintln(os.Stderr, "need -id and at least one line")
			os.Exit(1)
		}
		entry, err := c.UpdateDiary(ctx, *id, draftLines(fs.Args()))
		if err != nil {
			fail(err)
		}
		printEntry(entry.ID, entry.CreatedAt, entry.Content, entry.LikeCount)

	case "rm":
		fs := flag.NewFlagSet("rm", flag.ExitOnError)
		id := fs.String("id", "", "diary id")
		_ = fs.Parse(args)
		if *id == "" {
			fmt.Fprintln(os.Stderr, "need -id")
			os.Exit(1)
		}
		if err := c.DeleteDiary(ctx, *id); err != nil {
			fail(err)
		}
		fmt.Println("삭제되었습니다.")

	case "list":
		fs := flag.NewFlagSet("list", flag.ExitOnError)
		year := fs.Int("year", 0, "filter year")
		month := fs.Int("month", 0, "filter month (1-12)")
		day := fs.Int("day", 0, "filter day (1-31)")
		page := fs.Int("page", 1, "page")
		size := fs.Int("size", 9, "page size")
		_ = fs.Parse(args)

		var filter datefilter.Filter
		if *year > 0 {
			filter.SetYear(*year)
		}
		if *month > 0 {
			filter.SetMonth(*month)
		}
		if *day > 0 {
			filter.SetDay(*day)
		}

		entries, pag, err := c.ListDiaries(ctx, filter, *page, *size)
		if err != nil {
			fail(err)
		}
		for _, e := range entries {
			printEntry(e.ID, e.CreatedAt, e.Content, e.LikeCount)
		}
		fmt.Printf("— %d/%d페이지, 총 %d개\n", pag.CurrentPage, pag.TotalPage, pag.Total)

	case "count":
		n, err := c.DiaryCount(ctx)
		if err != nil {
			fail(err)
		}
		fmt.Println(n)

	case "feed":
		fs := flag.NewFlagSet("feed", flag.ExitOnError)
		page := fs.Int("page", 1, "page")
		size := fs.Int("size", 9, "page size")
		_ = fs.Parse(args)

		items, pag, err := c.Feed(ctx, *page, *size)
		if err != nil {
			fail(err)
		}
		for _, it := range items {
			mark := " "
			if it.Liked {
				mark = "♥"
			}
			fmt.Printf("%s %s  %s  (%s, ♥%d)\n",
				mark, it.ID, strings.Join(it.Content, " / "), it.Nickname, it.LikeCount)
		}
		fmt.Printf("— %d/%d페이지, 총 %d개\n", pag.CurrentPage, pag.TotalPage, pag.Total)

	case "like":
		fs := flag.NewFlagSet("like", flag.ExitOnError)
		id := fs.String("id", "", "diary id")
		_ = fs.Parse(args)
		if *id == "" {
			fmt.Fprintln(os.Stderr, "need -id")
			os.Exit(1)
		}
		liked, count, err := c.ToggleLike(ctx, *id)
		if err != nil {
			fail(err)
		}
		if liked {
			fmt.Printf("좋아요! (♥%d)\n", count)
		} else {
			fmt.Printf("좋아요 취소 (♥%d)\n", count)
		}

	case "graph":
		timestamps, err := c.Contributions(ctx)
		if err != nil {
			fail(err)
		}
		renderGraph(os.Stdout, timestamps, time.Now())

	default:
		usage()
	}
}

// draftLines feeds raw args through a Draft so the CLI enforces the same
// line bounds as the web editor.
func draftLines(args []string) []string {
	d := client.NewDraft()
	for i, line := range args {
		if i >= client.DraftMaxLines {
			fmt.Fprintf(os.Stderr, "최대 %d줄까지만 적을 수 있습니다.\n", client.DraftMaxLines)
			os.Exit(1)
		}
		if i > 0 && !d.AddLine() {
			break
		}
		if !d.SetLine(i, line) {
			fmt.Fprintf(os.Stderr, "각 줄은 %d자 이내여야 합니다: %q\n", client.DraftMaxLineRunes, line)
			os.Exit(1)
		}
	}
	return d.Lines()
}

func printEntry(id string, at time.Time, content []string, likes int) {
	fmt.Printf("%s  %s  (♥%d)\n", at.Format("2006-01-02"), id, likes)
	for _, line := range content {
		fmt.Printf("  · %s\n", line)
	}
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
