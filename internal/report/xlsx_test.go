package report

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
	"github.com/preston-bernstein/pen-pictures/internal/squad"
	"github.com/preston-bernstein/pen-pictures/internal/testutil"
)

func openSheet(t *testing.T, path string) (*excelize.File, string) {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f, f.GetSheetName(0)
}

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell)
	if err != nil {
		t.Fatalf("read %s: %v", cell, err)
	}
	return v
}

func TestWriteXLSXLayout(t *testing.T) {
	keeper := testutil.SamplePlayer("102", players.PositionGoalkeeper, 1)
	keeper.FirstName, keeper.Surname = "Kasper", "Schmeichel"
	keeper.Nation = "Denmark"
	keeper.Stats = players.Stats{Appearances: 38, Starts: 38, Minutes: 3420}
	keeper.Role = players.Goalkeeper{CleanSheets: 11, PenaltiesFaced: 5, PenaltiesSaved: 1}

	sq := squad.Squad{Players: []players.Player{keeper, vardy()}}
	path := filepath.Join(t.TempDir(), "pen_pictures.xlsx")
	if err := WriteXLSX(path, testutil.SampleTeam(), sq, XLSXOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, sheet := openSheet(t, path)
	if sheet != "Foxes pen pics" {
		t.Fatalf("unexpected sheet name %q", sheet)
	}

	// Keeper block starts at row 7; with no sentences it ends at row 17 and Vardy starts at row 18.
	expect := map[string]string{
		"A1":  "Foxes squad",
		"A7":  "1. Kasper Schmeichel      Denmark",
		"A8":  "Goalkeeper",
		"A10": "2020-2021 Premier League:",
		"A12": "Appearances:",
		"C12": "38",
		"A13": "Starts:",
		"C16": "3420",
		"E12": "Clean sheets:",
		"G12": "11",
		"E14": "Penalties faced:",
		"G14": "5",
		"G15": "1",
		"A18": "9. Jamie Vardy      England",
		"A19": "Striker",
		"E19": "Foot: Right",
		"H19": "Height: 5 ft 10 in",
		"E23": "Goals:",
		"G23": "15",
		"G24": "9",
		"E26": "Involvements:",
		"G26": "24",
		"A29": "Season stats:",
		"A30": "Foxes's top scorer this season with 15 goals",
	}
	for cell, want := range expect {
		if got := cellValue(t, f, sheet, cell); got != want {
			t.Fatalf("cell %s: expected %q, got %q", cell, want, got)
		}
	}
	if got := cellValue(t, f, sheet, "E8"); got != "" {
		t.Fatalf("expected no foot cell for keeper without foot, got %q", got)
	}

	merged, err := f.GetMergeCells(sheet)
	if err != nil {
		t.Fatalf("merge cells: %v", err)
	}
	refs := make([]string, 0, len(merged))
	for _, m := range merged {
		refs = append(refs, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	joined := strings.Join(refs, ",")
	for _, want := range []string{"A1:J5", "A7:J7", "A18:J18"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected merged range %s in %s", want, joined)
		}
	}
}

func TestWriteXLSXNoAppearancesAndNoPenalties(t *testing.T) {
	backup := testutil.SamplePlayer("109", players.PositionGoalkeeper, 13)
	backup.Role = players.Goalkeeper{}
	starter := testutil.SamplePlayer("102", players.PositionGoalkeeper, 1)
	starter.Stats.Appearances = 2
	starter.Role = players.Goalkeeper{CleanSheets: 1}

	sq := squad.Squad{Players: []players.Player{starter, backup}}
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteXLSX(path, testutil.SampleTeam(), sq, XLSXOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, sheet := openSheet(t, path)
	if got := cellValue(t, f, sheet, "G14"); got != "" {
		t.Fatalf("expected penalty values omitted when none faced, got %q", got)
	}
	// starter occupies rows 7..17, backup name row is 18 and has no breakdown.
	if got := cellValue(t, f, sheet, "C23"); got != "0" {
		t.Fatalf("expected zero appearances for backup, got %q", got)
	}
	if got := cellValue(t, f, sheet, "A24"); got != "" {
		t.Fatalf("expected no breakdown rows without appearances, got %q", got)
	}
}

func writeBadge(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "badge.png")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("create badge: %v", err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		t.Fatalf("encode badge: %v", err)
	}
	return path
}

func TestWriteXLSXBadgePlacement(t *testing.T) {
	p := testutil.SamplePlayer("101", players.PositionForward, 9)
	sq := squad.Squad{Players: []players.Player{p}}
	path := filepath.Join(t.TempDir(), "badge.xlsx")
	if err := WriteXLSX(path, testutil.SampleTeam(), sq, XLSXOptions{BadgePath: writeBadge(t)}); err != nil {
		t.Fatalf("write xlsx with badge: %v", err)
	}

	f, sheet := openSheet(t, path)
	for _, cell := range []string{"A2", "J2"} {
		pics, err := f.GetPictures(sheet, cell)
		if err != nil {
			t.Fatalf("read pictures at %s: %v", cell, err)
		}
		if len(pics) != 1 {
			t.Fatalf("expected one badge at %s, got %d", cell, len(pics))
		}
		if len(pics[0].File) == 0 {
			t.Fatalf("expected badge bytes at %s", cell)
		}
	}
	if pics, _ := f.GetPictures(sheet, "A7"); len(pics) != 0 {
		t.Fatalf("expected no picture outside the header, got %d", len(pics))
	}
}

func TestWriteXLSXMissingBadge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	err := WriteXLSX(path, testutil.SampleTeam(), squad.Squad{}, XLSXOptions{BadgePath: filepath.Join(t.TempDir(), "missing.png")})
	if err == nil {
		t.Fatalf("expected error for missing badge image")
	}
}

func TestSheetName(t *testing.T) {
	if got := SheetName("Brighton & Hove Albion Football Club"); len([]rune(got)) != 31 {
		t.Fatalf("expected truncation to 31 runes, got %q", got)
	}
	if got := SheetName("A/B"); got != "A B pen pics" {
		t.Fatalf("expected invalid characters replaced, got %q", got)
	}
}
