package schema

// schema is accepted by both mysql and ramsql.
const schema = `CREATE TABLE notes (
	id BIGINT PRIMARY KEY AUTO_INCREMENT,
	title TEXT,
	content TEXT,
	created_at TIMESTAMP
)`

const dropSchema = `DROP TABLE notes`
