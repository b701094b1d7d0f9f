// Package description renders the final episode description text. It takes
// the outputs of the roster and content packages and assembles the publishable
// sections (header, participants, chapters, keywords, hashtags) in a fixed
// layout.
package description
