/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method patterns on the standard ServeMux. Every
route is wrapped with request logging; admin routes are additionally
wrapped with the bearer token gate so unauthorized requests are rejected
before any handler logic runs. The returned handler applies CORS for the
frontend origin.

Public routes: product/category/project/blog/testimonial reads, order
and testimonial and review submission, newsletter subscribe, contact.

Admin routes (Authorization: Bearer <token>): product writes, order
status updates, testimonial moderation, subscriber list, blog CRUD,
settings. Project and category writes are not gated; the admin
dashboard happens to be their only caller.
*/
package router
