// Package landingpage contains the landing page and campaign content service.
//
// The domain layer assembles template blocks, product ids, call-to-action
// settings and reusable kits into a versioned content document with SEO
// metadata. It performs no I/O. Application use cases add the template
// library, kit storage, draft persistence and the landing.page_drafted outbox
// around it through ports.
package landingpage
