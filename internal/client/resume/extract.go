// Package resume holds the resume-extraction stub and the LaTeX template
// generator. Extraction is a stand-in for an external parsing service: it
// returns fixed sample data regardless of input, and callers should treat it
// as a stubbed collaborator rather than a parsing engine.
package resume

import "context"

// Data is the structured content of a parsed resume.
type Data struct {
	Name           string
	Email          string
	Phone          string
	Skills         string
	Experience     string
	Education      string
	Summary        string
	Projects       []string
	Certifications []string
}

// Extract pretends to parse the file at path and returns sample data.
func Extract(_ context.Context, _ string) (*Data, error) {
	return &Data{
		Name:       "John Doe",
		Email:      "john.doe@email.com",
		Phone:      "+1 (555) 123-4567",
		Skills:     "Java, Spring Boot, React, Node.js, AWS, Docker, Kubernetes, PostgreSQL, MongoDB",
		Experience: "5 years of software development experience with focus on backend systems and microservices architecture",
		Education:  "Bachelor of Science in Computer Science - Stanford University (2018)",
		Summary:    "Experienced software engineer with expertise in full-stack development, cloud technologies, and agile methodologies.",
		Projects: []string{
			"E-commerce Platform: Built scalable microservices using Spring Boot and React",
			"Cloud Migration: Migrated legacy systems to AWS with 40% performance improvement",
			"API Development: Designed RESTful APIs serving 1M+ requests daily",
		},
		Certifications: []string{
			"AWS Certified Solutions Architect",
			"Certified Kubernetes Administrator",
		},
	}, nil
}
