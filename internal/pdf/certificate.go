package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator — интерфейс (удобно мокать в тестах)
type Generator interface {
	GenerateCertificate(data CertificateData) (string, error)
}

// CertificateGenerator — реализация
type CertificateGenerator struct {
	RootDir  string // корень хранения, например "./files"
	FontPath string // путь до TTF, например "assets/fonts/DejaVuSans.ttf"
	fontName string // внутреннее имя шрифта в PDF
}

type CertificateData struct {
	UserName      string
	Level         string // A1..C2
	IssuedAt      time.Time
	CertificateID string
	Filename      string // имя файла (без путей); если пусто — сгенерируем
}

func NewCertificateGenerator(rootDir, fontPath string) *CertificateGenerator {
	return &CertificateGenerator{
		RootDir:  filepath.Clean(rootDir),
		FontPath: fontPath,
		fontName: "DejaVu",
	}
}

func (g *CertificateGenerator) GenerateCertificate(data CertificateData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("certificate_%s.pdf", data.CertificateID)
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Test School Certificate %s", data.CertificateID), false)
	pdf.SetAuthor("Test School", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	g.addUTF8Font(pdf)
	pdf.AddPage()

	// ===== Заголовок
	pdf.Ln(20)
	pdf.SetFont(g.fontName, "B", 26)
	pdf.CellFormat(0, 14, "Test School Certification", "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(10)

	pdf.SetFont(g.fontName, "", 13)
	pdf.CellFormat(0, 8, "This is to certify that", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 20)
	pdf.CellFormat(0, 10, data.UserName, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "", 13)
	pdf.CellFormat(0, 8, "has demonstrated digital competency at level", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 32)
	pdf.CellFormat(0, 16, data.Level, "", 1, "C", false, 0, "")
	pdf.Ln(10)
	g.hr(pdf)
	pdf.Ln(6)

	// ===== Реквизиты
	g.kvLine(pdf, "Date", data.IssuedAt.Format("02.01.2006"))
	g.kvLine(pdf, "Certificate ID", data.CertificateID)

	// ===== Нумерация страниц
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

// ===== helpers =====

func (g *CertificateGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename = filepath.Base(filename) // безопасность
	return filepath.Abs(filepath.Join(g.RootDir, filename))
}

func (g *CertificateGenerator) addUTF8Font(pdf *gofpdf.Fpdf) {
	// AddUTF8Font принимает путь до TTF
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}

func (g *CertificateGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *CertificateGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}
