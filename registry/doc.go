/*
Package registry maps entity type names to model constructors.

Records in the key-value store carry no type information of their own; the
storage façade asks the registry for a fresh model of the requested type and
decodes the stored document into it. Hydration uses the same lookup with the
Target type from a foreign key's field metadata.

	registry.RegisterType("Host", func() models.Model { return &models.Host{} })

	m, err := registry.New("Host")

The Default registry is populated with the models catalogue when the relstore
package is initialized. Registration is thread-safe and should happen during
initialization, typically in init() functions.
*/
package registry
