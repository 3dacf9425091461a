//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/fieldops/rollcall --repository.default-branch main --repository.path /

package rollcall
