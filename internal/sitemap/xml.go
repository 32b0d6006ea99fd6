// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sitemap

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// xmlns is the sitemaps.org protocol namespace.
const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// urlXML is the <url> element of the sitemap document.
type urlXML struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// urlsetXML is the <urlset> root element.
type urlsetXML struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlXML `xml:"url"`
}

// XML serializes entries into a UTF-8 sitemap document. lastmod is
// rendered as YYYY-MM-DD and priority as a plain decimal.
func XML(entries []Entry) ([]byte, error) {
	doc := urlsetXML{
		Xmlns: xmlns,
		URLs:  make([]urlXML, 0, len(entries)),
	}
	for _, e := range entries {
		doc.URLs = append(doc.URLs, urlXML{
			Loc:        e.Loc,
			LastMod:    e.LastMod.Format("2006-01-02"),
			ChangeFreq: e.ChangeFreq,
			Priority:   strconv.FormatFloat(e.Priority, 'f', -1, 64),
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("sitemap marshal: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}
