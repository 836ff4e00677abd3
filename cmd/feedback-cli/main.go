// Command feedback-cli collects faculty ratings interactively and prints the
// aggregated summary. It runs the same aggregation engine as the server, so
// the numbers on screen always match what the HTTP API would report for the
// same submissions.
package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/campuskit/feedback-server/internal/feedback"
	"github.com/campuskit/feedback-server/internal/report"
)

var filenameSafe = regexp.MustCompile(`[^A-Za-z0-9_\-]+`)

func main() {
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("=== Faculty Feedback Collector ===")

	subject := prompt(in, "Enter faculty name: ")
	if subject == "" {
		subject = "Unknown Faculty"
	}

	categories := promptCategories(in)

	var count int
	for {
		n, err := strconv.Atoi(prompt(in, "How many students will provide feedback? "))
		if err == nil && n > 0 {
			count = n
			break
		}
		fmt.Println("Please enter a positive integer.")
	}

	fmt.Println("\nEnter ratings on a scale of 1-5.")
	submissions := make([]feedback.Submission, 0, count)
	for i := 1; i <= count; i++ {
		fmt.Printf("\n--- Student %d ---\n", i)

		ratings := make(map[string]int, len(categories))
		for _, c := range categories {
			ratings[c] = promptRating(in, c)
		}
		comment := prompt(in, "Comment (optional): ")

		submissions = append(submissions, feedback.Submission{
			Subject: subject,
			Ratings: ratings,
			Comment: comment,
		})
	}

	summary, err := feedback.Summarize(categories, submissions)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not summarize feedback:", err)
		os.Exit(1)
	}

	fmt.Println("\n=== Results ===")
	fmt.Printf("Faculty: %s\n", subject)
	fmt.Printf("Responses: %d\n", summary.ResponseCount)
	fmt.Println("Category averages:")
	for _, c := range categories {
		fmt.Printf("  - %s: %.2f\n", c, summary.CategoryAverages[c])
	}
	fmt.Printf("Overall Average: %.2f/5.00\n", summary.OverallAverage)
	fmt.Printf("Stars: %s\n", feedback.Stars(summary.OverallAverage))

	if !strings.HasPrefix(strings.ToLower(prompt(in, "\nWrite PDF report? (y/N): ")), "y") {
		return
	}

	data := feedback.AssembleReport(subject, summary, categories)
	pdf, err := report.Render(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not generate PDF:", err)
		os.Exit(1)
	}

	name := fmt.Sprintf("feedback_%s_%s.pdf", sanitizeFilename(subject), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(name, pdf, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "could not write PDF:", err)
		os.Exit(1)
	}
	fmt.Println("PDF generated:", name)
}

func prompt(in *bufio.Scanner, question string) string {
	fmt.Print(question)
	if !in.Scan() {
		fmt.Println()
		os.Exit(1)
	}
	return strings.TrimSpace(in.Text())
}

func promptCategories(in *bufio.Scanner) feedback.CategorySet {
	answer := strings.ToLower(prompt(in, "Use default categories? (Y/n): "))
	if !strings.HasPrefix(answer, "n") {
		return feedback.DefaultCategories
	}

	fmt.Println("Enter categories one per line. Leave blank to finish.")
	var names []string
	for {
		name := prompt(in, fmt.Sprintf("Category %d: ", len(names)+1))
		if name == "" {
			break
		}
		names = append(names, name)
	}

	categories, err := feedback.NewCategorySet(names)
	if err != nil {
		fmt.Println("Falling back to default categories:", err)
		return feedback.DefaultCategories
	}
	return categories
}

func promptRating(in *bufio.Scanner, category string) int {
	for {
		parsed, err := feedback.ParseRatings(feedback.CategorySet{category}, map[string]string{
			category: prompt(in, fmt.Sprintf("%s: ", category)),
		})
		if err == nil {
			return parsed[category]
		}
		fmt.Println("Please enter a whole number between 1 and 5.")
	}
}

func sanitizeFilename(name string) string {
	cleaned := strings.Trim(filenameSafe.ReplaceAllString(name, "_"), "_")
	if cleaned == "" {
		return "faculty"
	}
	return cleaned
}
