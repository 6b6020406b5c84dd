package seed

import (
	"fmt"
	"math/rand"

	"tagespresse/internal/models"
	"tagespresse/internal/repository"

	"go.uber.org/zap"
)

// Categories is the fixed set of sections the demo catalog spans.
var Categories = []string{
	"Politik", "Sport", "Kultur", "Wirtschaft", "Technologie",
	"Wissenschaft", "Gesundheit", "Umwelt", "Reisen",
}

var usernames = []string{
	"Max", "Lena", "Jonas", "Sophie", "Finn", "Marie", "Paul", "Laura", "Tim", "Anna",
}

var commentTemplates = []string{
	"Sehr interessanter Artikel, danke für die Zusammenfassung!",
	"Das sehe ich etwas anders, aber gut geschrieben.",
	"Endlich berichtet mal jemand darüber.",
	"Gibt es dazu auch weiterführende Quellen?",
	"Spannendes Thema, bitte mehr davon.",
	"Kurz und informativ, genau richtig.",
	"Die Überschrift verspricht mehr als der Text hält.",
	"Guter Überblick für den Einstieg ins Thema.",
}

// specials are hand-written comments pinned to positions in the shuffled
// catalog. TODO: they address the article by slice position, which shifts
// with every shuffle; pin them to catalog titles instead.
var specials = []struct {
	pos  int
	user string
	text string
}{
	{0, "Redaktion", "Hinweis der Redaktion: Dieser Artikel wurde nach Veröffentlichung um Zahlen ergänzt."},
	{2, "Dr. Weber", "Als Fachmann auf diesem Gebiet kann ich die Kernaussagen bestätigen."},
	{5, "Kritiker_42", "Die Studienlage ist hier deutlich dünner, als der Artikel suggeriert."},
}

// Seeder populates an empty store with the demo catalog. The rand source is
// injected so tests can use fixed seeds.
type Seeder struct {
	articles *repository.ArticleRepository
	comments *repository.CommentRepository
	rng      *rand.Rand
	log      *zap.Logger
}

func New(articles *repository.ArticleRepository, comments *repository.CommentRepository, rng *rand.Rand, log *zap.Logger) *Seeder {
	return &Seeder{articles: articles, comments: comments, rng: rng, log: log}
}

// Run seeds the store once. A non-empty articles table makes it a logged
// no-op, never an error.
func (s *Seeder) Run() error {
	count, err := s.articles.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Info("articles already seeded, skipping")
		return nil
	}

	articles := Catalog()
	s.rng.Shuffle(len(articles), func(i, j int) {
		articles[i], articles[j] = articles[j], articles[i]
	})

	// 先提交文章，拿到生成的 ID
	if err := s.articles.CreateBatch(articles); err != nil {
		return fmt.Errorf("seed articles: %w", err)
	}

	var comments []*models.Comment
	for _, article := range articles {
		n := 2 + s.rng.Intn(4) // 2 to 5 comments per article
		for i := 0; i < n; i++ {
			comments = append(comments, &models.Comment{
				User:      usernames[s.rng.Intn(len(usernames))],
				Text:      commentTemplates[s.rng.Intn(len(commentTemplates))],
				ArticleID: article.ID,
			})
		}
	}
	for _, sp := range specials {
		if sp.pos >= len(articles) {
			continue
		}
		comments = append(comments, &models.Comment{
			User:      sp.user,
			Text:      sp.text,
			ArticleID: articles[sp.pos].ID,
		})
	}

	if err := s.comments.CreateBatch(comments); err != nil {
		return fmt.Errorf("seed comments: %w", err)
	}

	s.log.Info("seed data created",
		zap.Int("articles", len(articles)),
		zap.Int("comments", len(comments)))
	return nil
}

// Catalog returns fresh instances of the demo articles, one batch per call.
func Catalog() []*models.Article {
	return []*models.Article{
		{
			Title:    "Koalition einigt sich auf Haushaltsentwurf",
			Summary:  "Nach wochenlangen Verhandlungen steht der Haushaltsentwurf für das kommende Jahr.",
			Content:  "Die Regierungskoalition hat sich nach langen Verhandlungen auf einen gemeinsamen Haushaltsentwurf geeinigt.\n\n**Kernpunkte** sind höhere Investitionen in Infrastruktur und Bildung sowie ein moderater Abbau der Neuverschuldung. Die Opposition kündigte bereits Widerstand im Parlament an.",
			Category: "Politik",
		},
		{
			Title:    "Landtagswahl: Umfragen sehen enges Rennen",
			Summary:  "Wenige Wochen vor der Wahl liegen die großen Parteien fast gleichauf.",
			Content:  "Die jüngsten Umfragen zur Landtagswahl zeigen ein Kopf-an-Kopf-Rennen. Politikwissenschaftler rechnen mit einer schwierigen Regierungsbildung, da keine der klassischen Koalitionen derzeit eine Mehrheit hätte.",
			Category: "Politik",
		},
		{
			Title:    "Aufsteiger überrascht mit Auswärtssieg",
			Summary:  "Der Tabellenletzte gewinnt beim Spitzenreiter mit 2:1.",
			Content:  "Mit einem überraschenden 2:1-Auswärtssieg beim Spitzenreiter hat der Aufsteiger die Liga aufgemischt.\n\nBeide Tore fielen erst in der Schlussviertelstunde. Der Trainer sprach anschließend von einem *perfekten Spieltag*.",
			Category: "Sport",
		},
		{
			Title:    "Marathon: Streckenrekord trotz Regenwetter",
			Summary:  "Beim Stadtmarathon fiel der zwölf Jahre alte Streckenrekord.",
			Content:  "Trotz Dauerregens wurde beim diesjährigen Stadtmarathon der Streckenrekord unterboten. Die Siegerin lag am Ende fast zwei Minuten unter der alten Bestmarke und qualifizierte sich damit für die Weltmeisterschaft.",
			Category: "Sport",
		},
		{
			Title:    "Museumsinsel eröffnet neue Dauerausstellung",
			Summary:  "Die umgebaute Galerie zeigt Werke aus drei Jahrhunderten.",
			Content:  "Nach zweijähriger Umbauzeit eröffnet die Galerie auf der Museumsinsel ihre neue Dauerausstellung. Gezeigt werden über 300 Werke, darunter mehrere Leihgaben aus internationalen Sammlungen.",
			Category: "Kultur",
		},
		{
			Title:    "Leitzins bleibt unverändert",
			Summary:  "Die Zentralbank belässt den Leitzins auf dem aktuellen Niveau.",
			Content:  "Die Zentralbank hat den Leitzins wie erwartet nicht angetastet. Beobachter werten die begleitende Erklärung jedoch als Hinweis auf eine mögliche Senkung im Herbst, sollte die Inflation weiter zurückgehen.",
			Category: "Wirtschaft",
		},
		{
			Title:    "Chiphersteller kündigt neues Werk an",
			Summary:  "Milliardeninvestition soll tausende Arbeitsplätze schaffen.",
			Content:  "Ein führender Chiphersteller hat den Bau eines neuen Werks angekündigt. Die Investition von mehreren Milliarden Euro gilt als größte Industrieansiedlung der Region seit Jahrzehnten.\n\n- Baubeginn: kommendes Frühjahr\n- Produktionsstart: in drei Jahren",
			Category: "Technologie",
		},
		{
			Title:    "Open-Source-Projekt erreicht Version 1.0",
			Summary:  "Nach fünf Jahren Entwicklung gilt die Software als stabil.",
			Content:  "Das Community-Projekt hat nach fünf Jahren Entwicklungszeit die Version 1.0 veröffentlicht. Die Maintainer betonen, dass die Schnittstellen ab sofort stabil bleiben und Produktionseinsatz empfohlen wird.",
			Category: "Technologie",
		},
		{
			Title:    "Teleskop liefert Bilder einer jungen Galaxie",
			Summary:  "Die Aufnahmen zeigen eine Galaxie aus der Frühzeit des Universums.",
			Content:  "Astronomen haben Aufnahmen einer Galaxie veröffentlicht, deren Licht mehr als dreizehn Milliarden Jahre unterwegs war. Die Daten sollen helfen, die Entstehung der ersten Sterne besser zu verstehen.",
			Category: "Wissenschaft",
		},
		{
			Title:    "Studie: Mehr Bewegung im Alltag senkt Risiko",
			Summary:  "Schon kurze Spaziergänge zeigen messbare Effekte.",
			Content:  "Eine Langzeitstudie mit über 20.000 Teilnehmenden zeigt, dass bereits kurze tägliche Spaziergänge das Risiko für Herz-Kreislauf-Erkrankungen deutlich senken. Die Autoren empfehlen mindestens 30 Minuten Bewegung am Tag.",
			Category: "Gesundheit",
		},
		{
			Title:    "Moorflächen werden wiedervernässt",
			Summary:  "Das Renaturierungsprojekt soll CO2-Emissionen senken.",
			Content:  "In der Region werden in den kommenden Jahren mehrere hundert Hektar Moorfläche wiedervernässt. Trockengelegte Moore gelten als erhebliche CO2-Quelle; das Projekt wird aus Landes- und EU-Mitteln finanziert.",
			Category: "Umwelt",
		},
		{
			Title:    "Nachtzugnetz wird ausgebaut",
			Summary:  "Drei neue Verbindungen starten zum Fahrplanwechsel.",
			Content:  "Zum Fahrplanwechsel gehen drei neue Nachtzugverbindungen in Betrieb. Die Betreiber reagieren damit auf die stark gestiegene Nachfrage nach klimafreundlichen Alternativen zum Kurzstreckenflug.",
			Category: "Reisen",
		},
	}
}
