// Package overlay stores rendering annotations that sit on top of document
// text: per-character style ranges and per-line background colors.
//
// Each concern has two modes. In managed mode the overlay owns a table and
// answers queries from it; in external mode registered providers answer on
// demand and the mutation methods silently do nothing. Registering the first
// provider switches a concern to external mode (clearing the managed table);
// removing the last provider switches it back.
//
// Overlays never watch the document on their own. The editor forwards each
// change notification through TextChanged so that annotation offsets follow
// the text.
package overlay
