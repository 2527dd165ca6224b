// Package migrator writes generated SQL to versioned migration files and keeps the
// migration directory's integrity file up to date.
//
// Migration files are named <yyyyMMddhhmmss>[_name].sql using the UTC time they were
// generated, so lexical order is application order. Alongside them, sqltools.sum
// records a chained sha256 of every file:
//
//	h1:<base64 sha256 of all file hashes>
//	20261018120000_create_users.sql h1:<base64 hash>
//	20261018130000_add_email.sql h1:<base64 hash>
//
// Each file's hash covers its content and the previous file's hash, so editing,
// removing or reordering an applied migration changes every hash after it.
//
// Example usage:
//
//	statements := format.Render(diffs, format.Defaults)
//	path, err := migrator.GenerateMigrationFile("migrations", "add_email", statements)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	dir, err := migrator.LoadMigrationDir(os.DirFS("migrations"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if ok, _ := dir.Validate(); !ok {
//		log.Fatal("migrations were modified after sqltools.sum was written")
//	}
package migrator
