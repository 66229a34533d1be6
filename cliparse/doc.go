/*
Package cliparse handles command-line argument parsing and environment
fallbacks for server configuration.

# Precedence

Flags win over environment variables, which win over defaults:

	quantum-backend -p 4000 -d /var/lib/quantum.db

	PORT=4000 DATABASE_PATH=/var/lib/quantum.db quantum-backend

# Configuration

  - Port: -p flag, PORT env, default 3001
  - DatabasePath: -d flag, DATABASE_PATH env, default quantum.db
  - AdminToken: -admin-token flag, ADMIN_TOKEN env. Required; startup
    fails without it.
  - EmailHost/EmailPort/EmailUser/EmailPass: EMAIL_* env only. An empty
    EMAIL_HOST disables notification emails. EMAIL_PORT defaults to 587.
  - AdminEmail: ADMIN_EMAIL env, falling back to EMAIL_USER.

Secrets are flag-accessible for development convenience but should come
from the environment (or a .env file, loaded by main) in deployment.
*/
package cliparse
