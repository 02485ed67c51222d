// Package harvest scrapes the external skin catalog and normalizes what it finds.
//
// A run fetches the costume listing page, keeps the anchors that point at costume
// detail pages, and fetches each detail page in order with a fixed pause between
// requests. Every page goes through the Normalizer:
//
//   - the character name comes from the link slug (override table first, then title case)
//   - the skin name is the link text with the "+Wishlist"/"+Locker" labels stripped
//   - the skin id is the 7-digit value in the detail table, with any "ps" prefix removed
//   - a default skin without a site id gets "<character id>001"
//
// Items that cannot be resolved are skipped and reported as models.Diagnostic values.
// Only a listing failure or an empty harvest aborts the run.
package harvest
