package pdfpage

// LocatePage validates a 1-based page number against a document's page count
// and returns the 0-based index. Requests outside [1, totalPages] return a
// *PageOutOfRangeError carrying both the requested page and the valid range.
func LocatePage(totalPages, requestedPage int) (int, error) {
	if requestedPage < 1 || requestedPage > totalPages {
		return 0, &PageOutOfRangeError{Page: requestedPage, Total: totalPages}
	}
	return requestedPage - 1, nil
}
